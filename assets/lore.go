package assets

// WelcomeLore greets new arrivals, one line picked at random.
var WelcomeLore = []string{
	"The Barrow does not keep what the soul has claimed.",
	"Grave goods belong to the grave. Bound goods belong to no one.",
	"They buried kings here with their swords. The swords did not stay.",
	"Whatever you bind, you carry past death — as ash.",
}

// Package restaurant models the catalog side of the platform: categories,
// restaurants owned by a single Owner, and the dishes on their menus.
//
// Dish options come in two shapes:
//   - flat modifier: selecting it adds a fixed extra ("Pickle +1")
//   - choice group: one named choice is picked, each with its own extra ("Size: L +4")
//
// Category names are normalised ("  KOREAN Bbq " -> name "korean bbq",
// slug "korean-bbq") so the same category is found regardless of spelling.
package restaurant

package domain

// StartingFlux is the balance granted when a game state is first created.
const StartingFlux = 100

// Default fragment quantity for freshly generated items.
const DefaultFragmentQuantity = 1

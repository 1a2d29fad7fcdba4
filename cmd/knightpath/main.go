// Command knightpath moves a knight across a board along the shortest
// sequence of knight moves, in a terminal or behind an HTTP API.
package main

func main() {
	Execute()
}

// Package main is the entry point of confgen, the configuration-schema
// compiler.
package main

func main() {
	Execute()
}

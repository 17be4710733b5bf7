package main

import "github.com/sandeepkv93/levelup/cmd/levelup/root"

func main() {
	root.Execute()
}

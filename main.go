package main

import "github.com/dotcommander/distromatch/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/aalvaropc/workoutlog/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/Shubhamagrahari9191/Todolist/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"automaid/bot"
	"automaid/handlers"
)

func main() {
	bot.Run(handlers.Register)
}

package main

import (
	"github.com/Dwarak18/GPT-llama3.2/internal/server"
)

func main() {
	srv := server.NewServer()
	srv.Run()
}

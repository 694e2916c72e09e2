package main

import "github.com/playverse/backend/internal/server"

func main() {
	srv := server.NewServer()
	srv.Run()
}

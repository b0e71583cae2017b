package main

import "github.com/architeacher/devicedomains/internal/runtime"

func main() {
	runtime.New().Run()
}

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"courseledger/internal/coursectl"
)

func main() {

	principal := flag.String("principal", "", "caller principal to embed in the token")
	validity := flag.Int("validity", 60, "token validity (in minutes)")
	flag.Parse()

	opts := coursectl.Options{
		Principal: *principal,
		Validity:  time.Duration(*validity) * time.Minute,
	}

	if err := coursectl.Run(opts, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}

}

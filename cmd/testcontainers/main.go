// Runs the database and server containers locally and keeps them up until a
// termination signal arrives. Handy for poking at the API by hand.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/laodict/laodict-admin/tests/helpers"
)

const usage = `
Start the laodict-admin container stack and leave it running.

Usage:

  testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH points at a .env file with DB_* and PORT settings, for example:

  testcontainers -f deploy/local.env

Stop with Ctrl-C; the containers are terminated on the way out.`

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFile string
	flag.StringVar(&envFile, "f", "", "path to a .env file")
	flag.Parse()

	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFile != "" {
		log.Printf("Loading environment from %s", envFile)
		if err := godotenv.Load(envFile); err != nil {
			log.Fatalf("Failed to load %s: %v", envFile, err)
		}
	} else {
		log.Printf("No env file given, using the current environment")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	var stack *helpers.TestContainers
	go func() {
		var err error
		stack, err = helpers.CreateAllTestContainers(nil)
		if err != nil {
			log.Fatalf("Failed to create test containers: %v", err)
		}
		log.Printf("Stack is up, waiting for a signal")
	}()

	sig := <-sigs
	log.Printf("Received %v, terminating test containers", sig)
	if stack != nil {
		stack.Terminate(nil)
	}
}

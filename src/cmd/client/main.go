package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/wordcheck/src/lib/checkapi"
	"gitlab.com/pnathan/wordcheck/src/lib/log"
	"gitlab.com/pnathan/wordcheck/src/lib/words"
)

func MustMarshal(v any) []byte {
	b := new(bytes.Buffer)
	encoder := json.NewEncoder(b)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(v)
	if err != nil {
		panic(err)
	}

	return b.Bytes()
}

func Moan(complaint error) {
	log.Fatal("", zap.Error(complaint))
	os.Exit(1)
}

func main() {
	parser := argparse.NewParser("wordcheck client", "wordcheck client code")

	endpoint := parser.String("e", "endpoint",
		&argparse.Options{Required: true, Help: "endpoint to address", Default: "http://localhost:1337"})

	checkCmd := parser.NewCommand("check", "check words against the server's dictionary")
	file := checkCmd.String("f", "file",
		&argparse.Options{Required: false, Help: "file with the words; if not present, reads from stdin"})

	statusCmd := parser.NewCommand("status", "get the server's dictionary status")

	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		// In case of error print error and print usage
		// This can also be done by passing -h or --help flags
		fmt.Print(parser.Usage(err))
		return
	}

	if checkCmd.Happened() {
		policy := words.DefaultPolicy()
		var wordList []string
		if *file != "" {
			wordList, err = policy.ReadWords(*file)
		} else {
			wordList, err = policy.Tokenize(os.Stdin)
		}
		if err != nil {
			Moan(err)
		}

		response, err := checkapi.PostCheck(wordList, *endpoint)
		if err != nil {
			Moan(err)
		}
		fmt.Print(string(MustMarshal(response)))
	} else if statusCmd.Happened() {
		status, err := checkapi.GetStatus(*endpoint)
		if err != nil {
			Moan(err)
		}
		fmt.Print(string(MustMarshal(status)))
	}
}

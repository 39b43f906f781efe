// Command hanfish prints the tokens of Korean text, one input line per
// output line, as term/POS:increment:length:start:end:type; entries.
//
//	hanfish [-config options.yaml] [-userdb words.db [-add-word word]] [-pos-tagging] [text ...]
//
// Without text arguments lines are read from standard input.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kotaroooo0/hanfish"
	"go.uber.org/zap"
)

func main() {
	config := flag.String("config", "", "YAML options file")
	userDB := flag.String("userdb", "", "sqlite file with user words")
	addWord := flag.String("add-word", "", "store a user word in -userdb before analyzing")
	posTagging := flag.Bool("pos-tagging", false, "append the POS label to every term")
	normalize := flag.Bool("normalize", false, "apply NFC and width folding before analyzing")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()
	if err := checkFlags(*userDB, *addWord); err != nil {
		log.Fatal(err)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		logger = l
	}
	defer logger.Sync()

	opts := []hanfish.Option{hanfish.WithLogger(logger)}
	if *config != "" {
		fileOpts, err := hanfish.LoadOptions(*config)
		if err != nil {
			log.Fatalf("load %s: %v", *config, err)
		}
		opts = append(opts, fileOpts...)
	}
	if *userDB != "" {
		storage, err := openStorage(*userDB, *addWord)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, hanfish.WithUserWordStorage(storage))
	}

	tokenizer, err := hanfish.New(opts...)
	if err != nil {
		log.Fatal(err)
	}

	var charFilters []hanfish.CharFilter
	if *normalize {
		charFilters = append(charFilters, hanfish.NewNormalizeCharFilter(), hanfish.NewWidthCharFilter())
	}
	var tokenFilters []hanfish.TokenFilter
	if *posTagging {
		tokenFilters = append(tokenFilters, hanfish.NewPosTaggingFilter())
	}
	analyzer := hanfish.NewAnalyzer(charFilters, tokenizer, tokenFilters)

	if flag.NArg() > 0 {
		fmt.Println(analyzer.Analyze(strings.Join(flag.Args(), " ")))
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fmt.Println(analyzer.Analyze(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func checkFlags(userDB, addWord string) error {
	if addWord != "" && userDB == "" {
		return errors.New("-add-word needs -userdb")
	}
	return nil
}

func openStorage(path, word string) (*hanfish.UserWordStorageRdbImpl, error) {
	db, err := hanfish.NewDBClient(hanfish.NewSQLiteDBConfig(path))
	if err != nil {
		return nil, err
	}
	storage := hanfish.NewUserWordStorageRdbImpl(db)
	if err := storage.CreateTable(); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}
	if word != "" {
		if err := storage.AddUserWord(word); err != nil {
			return nil, fmt.Errorf("add %q: %w", word, err)
		}
	}
	return storage, nil
}

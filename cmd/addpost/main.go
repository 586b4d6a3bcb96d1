// Command addpost creates a news post, asking for any argument not given
// on the command line.
//
//	addpost [-v] [title] [description] [date]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"newsroom/config"
	"newsroom/console"
	"newsroom/database"
	"newsroom/models"
	"newsroom/services"
	"newsroom/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

const usage = `Usage: addpost [-v] [title] [description] [date]

Creates news and stores them in the database. Missing arguments are
asked for interactively. -v may also follow the arguments:

  addpost "Launch" "We shipped v1" 2023-05-01 -v
`

func main() {
	verboseFlag := flag.Bool("v", false, "print the database id of the new post")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args, trailing := splitVerbose(flag.Args())
	verbose := *verboseFlag || trailing

	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// SQL traces would interleave with the wizard on stdout.
	db, err := database.Connect(cfg, logger.Silent)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	workflow := services.NewAddPostWorkflow(services.NewNewsStore(db), utils.NewValidator())
	term := console.New(os.Stdin, os.Stdout, os.Stderr, verbose)

	os.Exit(run(context.Background(), workflow, term, args))
}

// run executes the command and returns its exit code.
func run(ctx context.Context, workflow *services.AddPostWorkflow, term *console.IO, args []string) int {
	if len(args) > 3 {
		term.Error(fmt.Sprintf("Too many arguments: expected at most 3, got %d.", len(args)))
		return 2
	}

	in := inputFromArgs(args)
	if err := workflow.Interact(term, &in); err != nil {
		term.Error(err.Error())
		return 1
	}

	post, err := workflow.Execute(ctx, in)
	if err != nil {
		term.Error(err.Error())
		return 1
	}

	term.Success(fmt.Sprintf("New Post %q was successfully created: %s (%s)", post.Name, post.Description, post.FormattedDate()))
	if term.IsVerbose() {
		term.Comment(fmt.Sprintf("New post database id: %d", post.ID))
	}
	return 0
}

// splitVerbose removes -v flags given after the positional arguments, which
// the flag package leaves in Args.
func splitVerbose(args []string) ([]string, bool) {
	rest := make([]string, 0, len(args))
	verbose := false
	for _, arg := range args {
		switch arg {
		case "-v", "--v", "-v=true", "--v=true":
			verbose = true
		default:
			rest = append(rest, arg)
		}
	}
	return rest, verbose
}

func inputFromArgs(args []string) models.AddPostInput {
	var in models.AddPostInput
	fields := []**string{&in.Title, &in.Description, &in.Date}
	for i, arg := range args {
		if i >= len(fields) {
			break
		}
		value := arg
		*fields[i] = &value
	}
	return in
}

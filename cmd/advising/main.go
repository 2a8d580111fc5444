package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"advising/catalog"
)

func main() {
	app := &cli.App{
		Name:  "advising",
		Usage: "course catalog and advising assistance",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "verbose",
			},
		},
		Commands: []*cli.Command{
			listCmd,
			infoCmd,
			dumpCmd,
			menuCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func setupLogger(cctx *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if cctx.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
	return log
}

func csvFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "csv",
		Usage:    "path to course data file",
		Required: required,
		EnvVars:  []string{"ADVISING_CSV"},
	}
}

func loadCatalog(cctx *cli.Context, log *slog.Logger) (*catalog.Catalog, error) {
	cat := catalog.NewCatalog(log)
	stats, err := cat.LoadFile(cctx.String("csv"))
	if err != nil {
		return nil, err
	}
	log.Debug("loaded course data", "added", stats.Added, "skipped", stats.Skipped)
	return cat, nil
}

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "print an alphanumeric list of all courses",
	Flags: []cli.Flag{csvFlag(true)},
	Action: func(cctx *cli.Context) error {
		log := setupLogger(cctx)
		cat, err := loadCatalog(cctx, log)
		if err != nil {
			return err
		}
		cat.WriteCourseList(os.Stdout)
		return nil
	},
}

var infoCmd = &cli.Command{
	Name:      "info",
	Usage:     "print one course with its prerequisites resolved",
	ArgsUsage: "COURSE_NUMBER",
	Flags:     []cli.Flag{csvFlag(true)},
	Action: func(cctx *cli.Context) error {
		log := setupLogger(cctx)
		if cctx.NArg() != 1 {
			return fmt.Errorf("expected exactly one course number argument")
		}
		cat, err := loadCatalog(cctx, log)
		if err != nil {
			return err
		}
		rep, err := cat.CourseInfo(cctx.Args().First())
		if err != nil {
			return err
		}
		rep.Format(os.Stdout)
		return nil
	},
}

var dumpCmd = &cli.Command{
	Name:  "dump",
	Usage: "print the balanced tree shape (key and height per node)",
	Flags: []cli.Flag{csvFlag(true)},
	Action: func(cctx *cli.Context) error {
		log := setupLogger(cctx)
		cat, err := loadCatalog(cctx, log)
		if err != nil {
			return err
		}
		cat.DumpTree(os.Stdout)
		return nil
	},
}

var menuCmd = &cli.Command{
	Name:  "menu",
	Usage: "interactive advising assistance menu",
	Flags: []cli.Flag{csvFlag(false)},
	Action: func(cctx *cli.Context) error {
		log := setupLogger(cctx)
		cat := catalog.NewCatalog(log)
		loaded := false

		in := bufio.NewScanner(os.Stdin)

		if path := cctx.String("csv"); path != "" {
			loaded = loadInteractive(cat, path)
		}

		for {
			printMenu()
			if !in.Scan() {
				return in.Err()
			}
			switch strings.TrimSpace(in.Text()) {
			case "":
				fmt.Println("Please enter a valid option number.")

			case "1":
				fmt.Print("Enter the filename containing course data: ")
				if !in.Scan() {
					return in.Err()
				}
				path := strings.TrimSpace(in.Text())
				if path == "" {
					fmt.Println("Filename cannot be empty.")
					continue
				}
				loaded = loadInteractive(cat, path)

			case "2":
				if !loaded {
					fmt.Println("Please load data (Option 1) before printing the course list.")
					continue
				}
				fmt.Println("---- Course List (Alphanumeric) ----")
				cat.WriteCourseList(os.Stdout)
				fmt.Println("------------------------------------")

			case "3":
				if !loaded {
					fmt.Println("Please load data (Option 1) before printing course information.")
					continue
				}
				fmt.Print("Enter the course number to look up (e.g., CSCI300): ")
				if !in.Scan() {
					return in.Err()
				}
				number := strings.TrimSpace(in.Text())
				if number == "" {
					fmt.Println("Course number cannot be empty.")
					continue
				}
				rep, err := cat.CourseInfo(number)
				if errors.Is(err, catalog.ErrCourseNotFound) {
					fmt.Printf("Course '%s' was not found. Please check the course number and try again.\n",
						catalog.NormalizeCourseNumber(number))
					continue
				} else if err != nil {
					return err
				}
				rep.Format(os.Stdout)

			case "9":
				fmt.Println("Exiting Advising Assistance. Goodbye!")
				return nil

			default:
				fmt.Println("Unknown option. Please enter 1, 2, 3, or 9.")
			}
		}
	},
}

// loadInteractive loads path into cat, reports the outcome on stdout, and
// returns whether the catalog now holds data.
func loadInteractive(cat *catalog.Catalog, path string) bool {
	stats, err := cat.LoadFile(path)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return false
	}
	fmt.Printf("Loaded %s courses", humanize.Comma(int64(stats.Added)))
	if stats.Skipped > 0 {
		fmt.Printf(" (%s skipped due to errors)", humanize.Comma(int64(stats.Skipped)))
	}
	fmt.Printf(" from '%s'.\n", path)
	return true
}

func printMenu() {
	fmt.Print("\n" +
		"========== Advising Assistance Menu ==========\n" +
		"  1. Load file data into the data structure\n" +
		"  2. Print an alphanumeric list of all courses\n" +
		"  3. Print course information\n" +
		"  9. Exit the program\n" +
		"==============================================\n" +
		"Enter your choice: ")
}

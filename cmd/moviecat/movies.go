package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/moviecat/internal/catalog"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movie catalog",
	Args:  cobra.NoArgs,
	RunE:  runMoviesCmd,
}

var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show a movie and the rest of the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovieCmd,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movie titles",
	Long: `Search movie titles by case-insensitive substring.

When nothing matches, the closest titles are suggested.

Examples:
  moviecat search pear
  moviecat search "golden"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCmd,
}

var addCmd = &cobra.Command{
	Use:   "add <file|->",
	Short: "Submit a movie (the server acknowledges without storing)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddCmd,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(movieCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(addCmd)
}

func runMoviesCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	movies, err := client.Movies()
	if err != nil {
		return fmt.Errorf("list movies failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, movies)
	}

	printMovies(out, movies)
	return nil
}

func runMovieCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	detail, err := client.Movie(args[0])
	if err != nil {
		return fmt.Errorf("get movie failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, detail)
	}

	m := detail.Movie
	fmt.Fprintf(out, "%s (#%d)\n", m.Title, m.ID)
	fmt.Fprintf(out, "  %s\n\n", m.Description)
	fmt.Fprintf(out, "  Cover:  %s\n", m.CoverURL)
	fmt.Fprintf(out, "  Stream: %s\n", m.StreamURL)

	if len(detail.Others) > 0 {
		fmt.Fprintln(out, "\nMore movies:")
		for _, o := range detail.Others {
			fmt.Fprintf(out, "  %4d  %s\n", o.ID, o.Title)
		}
	}
	return nil
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	resp, err := client.Search(args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resp)
	}

	if len(resp.Movies) > 0 {
		printMovies(out, resp.Movies)
		return nil
	}

	fmt.Fprintf(out, "No movies match %q.\n", resp.Query)
	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(out, "\nDid you mean:")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(out, "  %4d  %s\n", s.ID, s.Title)
		}
	}
	return nil
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	var (
		body []byte
		err  error
	)
	if args[0] == "-" {
		body, err = io.ReadAll(cmd.InOrStdin())
	} else {
		body, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read movie: %w", err)
	}

	client := NewClient(serverURL)
	ack, err := client.AddMovie(body)
	if err != nil {
		return fmt.Errorf("add movie failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, ack)
	}
	fmt.Fprintln(out, ack.Message)
	return nil
}

func printMovies(w io.Writer, movies []catalog.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies.")
		return
	}

	fmt.Fprintf(w, "%4s  %-30s  %s\n", "ID", "TITLE", "DESCRIPTION")
	printRule(w, 80)
	for _, m := range movies {
		fmt.Fprintf(w, "%4d  %-30s  %s\n", m.ID, truncate(m.Title, 30), truncate(m.Description, 44))
	}
	fmt.Fprintf(w, "\n%d movies\n", len(movies))
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eskendarov/weather-app/manager"
	"github.com/eskendarov/weather-app/session"
)

func New(lookup manager.Lookup) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "weather [query]",
		Args:  cobra.MaximumNArgs(1),
		Short: "CLI application for looking up current weather by city name",
		Long: `Type a partial city name to search for matching locations.
Commands at the prompt:
  <text>        search for locations matching <text>
  down, up      move the highlight through the candidate list (also j / k)
  <enter>       fetch weather for the highlighted candidate
  <number>      fetch weather for that candidate directly
  esc           hide the candidate list
  quit          exit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			searchSession := session.New()

			if len(args) == 1 {
				search(cmd, lookup, searchSession, args[0])
			}

			return run(cmd, lookup, searchSession)
		},
	}

	return cmd, nil
}

func run(cmd *cobra.Command, lookup manager.Lookup, s *session.Session) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())

	cmd.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "quit" || line == "exit":
			return nil
		case line == "":
			if candidate, ok := s.Confirm(); ok {
				show(cmd, lookup, candidate)
			}
		case line == "down" || line == "j":
			s.Navigate(session.Down)
			printCandidates(cmd, s)
		case line == "up" || line == "k":
			s.Navigate(session.Up)
			printCandidates(cmd, s)
		case line == "esc":
			s.Dismiss()
		case isIndex(line):
			n, _ := strconv.Atoi(line)
			if candidate, ok := s.Select(n - 1); ok {
				show(cmd, lookup, candidate)
			}
		default:
			search(cmd, lookup, s, line)
		}

		cmd.Print("> ")
	}

	return scanner.Err()
}

// search feeds a query change into the session and, when the session asks for
// one, issues the candidate request. A result for a query the user has since
// replaced is discarded by the session, never shown.
func search(cmd *cobra.Command, lookup manager.Lookup, s *session.Session, text string) {
	generation, ok := s.QueryChanged(text)
	if !ok {
		return
	}

	candidates, err := lookup.Candidates(cmd.Context(), text)
	if err != nil {
		cmd.PrintErrf("search failed: %s\n", err)
		return
	}

	if !s.CandidatesReceived(generation, candidates) {
		return
	}

	printCandidates(cmd, s)
}

// show fetches and renders weather for a selected candidate. On failure the
// notice goes to stderr and whatever was rendered before stays as it was.
func show(cmd *cobra.Command, lookup manager.Lookup, candidate manager.Candidate) {
	update, err := lookup.Weather(cmd.Context(), candidate)
	if err != nil {
		cmd.PrintErrf("weather lookup failed: %s\n", err)
		return
	}

	render(cmd.OutOrStdout(), update)
}

func printCandidates(cmd *cobra.Command, s *session.Session) {
	if !s.ListVisible() {
		cmd.Println("no matches")
		return
	}

	for i, candidate := range s.Candidates() {
		marker := " "
		if i == s.Highlighted() {
			marker = ">"
		}
		cmd.Printf("%s %d. %s, %s\n", marker, i+1, candidate.CityName, candidate.Region)
	}
}

// render presents a display update. Formatting happens here and nowhere
// earlier: the region is uppercased, temperatures get one decimal, and a
// missing icon reference means the icon line is not rendered at all.
func render(w io.Writer, update manager.DisplayUpdate) {
	fmt.Fprintf(w, "CITY\t\t%s\n", update.CityName)
	fmt.Fprintf(w, "REGION\t\t%s\n", strings.ToUpper(update.Region))
	fmt.Fprintf(w, "TEMP\t\t%.1f C / %.1f F\n", update.TempC, update.TempF)
	fmt.Fprintf(w, "CONDITION\t%s\n", update.Condition.Description)
	if update.Condition.Icon != "" {
		fmt.Fprintf(w, "ICON\t\t%s\n", update.Condition.Icon)
	}
	fmt.Fprintf(w, "HUMIDITY\t%d%%\n", update.Humidity)
	fmt.Fprintf(w, "WIND\t\t%.1f m/s\n", update.WindMS)
}

func isIndex(line string) bool {
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(line) > 0
}

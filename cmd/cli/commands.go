package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(clubsCmd)
	rootCmd.AddCommand(championshipsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(createClubCmd)
	rootCmd.AddCommand(createPlayerCmd)
	rootCmd.AddCommand(createChampionshipCmd)
	rootCmd.AddCommand(createMatchCmd)
	rootCmd.AddCommand(finalizeMatchCmd)
	rootCmd.AddCommand(recordEventCmd)
	rootCmd.AddCommand(exportCmd)

	rankingsCmd.Flags().String("limit", "", "Maximum number of ranking entries")
	createPlayerCmd.Flags().String("position", "", "Playing position")
	createPlayerCmd.Flags().String("club", "", "Club id the player belongs to")
	createPlayerCmd.Flags().Int("jersey", 0, "Jersey number")
	createMatchCmd.Flags().String("championship", "", "Championship id")
	createMatchCmd.Flags().String("date", "", "Match date (YYYY-MM-DD)")
	recordEventCmd.Flags().String("note", "", "Free-form note for the event")
	exportCmd.Flags().String("out", "futstats-export.msgpack", "File to write the snapshot to")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in and print a bearer token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/login", map[string]any{
			"email":    args[0],
			"password": args[1],
		})
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <email> <password> <name>",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/register", map[string]any{
			"email":    args[0],
			"password": args[1],
			"name":     args[2],
		})
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search players by name, case-insensitive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players/search?q=" + url.QueryEscape(args[0]))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <player-id>",
	Short: "Show a player's aggregated statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/player/stats?id=" + url.QueryEscape(args[0]))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <player-id> <player-id>",
	Short: "Compare two players side by side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/compare?a=" + url.QueryEscape(args[0]) + "&b=" + url.QueryEscape(args[1]))
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings <goals|assists>",
	Short: "Show a ranking of active players",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetString("limit")
		endpoint := "/rankings/" + url.PathEscape(args[0])
		if limit != "" {
			endpoint += "?limit=" + url.QueryEscape(limit)
		}
		return performGetRequest(endpoint)
	},
}

var clubsCmd = &cobra.Command{
	Use:   "clubs",
	Short: "List the registered clubs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/clubs")
	},
}

var championshipsCmd = &cobra.Command{
	Use:   "championships",
	Short: "List the registered championships",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/championships")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the registered matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all user accounts (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/users")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var createClubCmd = &cobra.Command{
	Use:   "create-club <name> <city>",
	Short: "Create a club (admin only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/clubs", map[string]any{
			"name": args[0],
			"city": args[1],
		})
	},
}

var createPlayerCmd = &cobra.Command{
	Use:   "create-player <name>",
	Short: "Create a player (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, _ := cmd.Flags().GetString("position")
		clubID, _ := cmd.Flags().GetString("club")
		jersey, _ := cmd.Flags().GetInt("jersey")
		return performPostRequest("/players", map[string]any{
			"name":     args[0],
			"position": position,
			"club_id":  clubID,
			"jersey":   jersey,
		})
	},
}

var createChampionshipCmd = &cobra.Command{
	Use:   "create-championship <name> <country> <season>",
	Short: "Create a championship (admin only)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/championships", map[string]any{
			"name":    args[0],
			"country": args[1],
			"season":  args[2],
		})
	},
}

var createMatchCmd = &cobra.Command{
	Use:   "create-match <home-club-id> <away-club-id>",
	Short: "Create a match (admin only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		championshipID, _ := cmd.Flags().GetString("championship")
		date, _ := cmd.Flags().GetString("date")
		return performPostRequest("/matches", map[string]any{
			"home_club_id":    args[0],
			"away_club_id":    args[1],
			"championship_id": championshipID,
			"date":            date,
		})
	},
}

var finalizeMatchCmd = &cobra.Command{
	Use:   "finalize-match <match-id> <home-score> <away-score>",
	Short: "Finalize a match with its score (admin only)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeScore, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid home score: %w", err)
		}
		awayScore, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid away score: %w", err)
		}
		return performPostRequest("/matches/finalize", map[string]any{
			"id":         args[0],
			"home_score": homeScore,
			"away_score": awayScore,
		})
	},
}

var recordEventCmd = &cobra.Command{
	Use:   "record-event <match-id> <player-id> <kind> <minute>",
	Short: "Record a match event (admin only)",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		minute, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid minute: %w", err)
		}
		note, _ := cmd.Flags().GetString("note")
		return performPostRequest("/events", map[string]any{
			"match_id":  args[0],
			"player_id": args[1],
			"kind":      args[2],
			"minute":    minute,
			"note":      note,
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download a MessagePack snapshot of every collection (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		req, err := http.NewRequest(http.MethodGet, host+"/export", nil)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to make request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("export failed with status %d: %s", resp.StatusCode, string(body))
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		n, err := io.Copy(f, resp.Body)
		if err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", n, out)
		return nil
	},
}

func performGetRequest(endpoint string) error {
	req, err := http.NewRequest(http.MethodGet, host+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return performRequest(req)
}

func performPostRequest(endpoint string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, host+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return performRequest(req)
}

func performRequest(req *http.Request) error {
	fmt.Printf("Making request to %s\n", req.URL.String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

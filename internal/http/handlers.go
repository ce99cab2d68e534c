package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/passabola/futstats/internal/auth"
	"github.com/passabola/futstats/internal/league"
	"github.com/vmihailenco/msgpack/v5"
)

// defaultRankingLimit is used when a ranking request carries no limit parameter.
const defaultRankingLimit = 10

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string    `json:"email"`
			Password string    `json:"password"`
			Name     string    `json:"name"`
			Role     auth.Role `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		user, err := s.Auth.Register(req.Email, req.Password, req.Name, req.Role)
		if err != nil {
			if errors.Is(err, auth.ErrDuplicateEmail) {
				http.Error(w, "Email already registered", http.StatusConflict)
				return
			}
			log.Warn("Rejected registration", "email", req.Email, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.Metrics.IncRegistrations()
		log.Info("Registered user", "email", user.Email, "role", user.Role)
		respondJSON(w, http.StatusCreated, user)
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		session, token, err := s.Auth.Login(req.Email, req.Password)
		if err != nil {
			s.Metrics.IncLoginFailure()
			// One message for every failure mode, so callers cannot probe
			// for registered emails.
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		s.Metrics.IncLoginSuccess()
		log.Info("User logged in", "email", session.Email)
		respondJSON(w, http.StatusOK, map[string]any{
			"session": session,
			"token":   token,
		})
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Auth.Logout()
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Logged out.")
	}
}

func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sessionFromContext(r))
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) SearchPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")
		players, err := s.Store.SearchPlayersByName(term)
		if err != nil {
			http.Error(w, "Failed to search players", http.StatusInternalServerError)
			log.Error("Failed to search players", "term", term, "error", err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}
		player, err := s.Store.GetPlayer(id)
		if err != nil {
			if errors.Is(err, league.ErrNotFound) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			log.Error("Failed to get player", "id", id, "error", err)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}
		playerStats, err := s.Stats.PlayerStats(id)
		if err != nil {
			http.Error(w, "Failed to compute player stats", http.StatusInternalServerError)
			log.Error("Failed to compute player stats", "id", id, "error", err)
			return
		}
		s.Metrics.IncStatsComputations()
		respondJSON(w, http.StatusOK, playerStats)
	}
}

func (s *Server) CompareHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := r.URL.Query().Get("a")
		b := r.URL.Query().Get("b")
		if a == "" || b == "" {
			http.Error(w, "Both player ids are required", http.StatusBadRequest)
			return
		}
		comparison, err := s.Stats.Compare(a, b)
		if err != nil {
			if errors.Is(err, league.ErrNotFound) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to compare players", http.StatusInternalServerError)
			log.Error("Failed to compare players", "a", a, "b", b, "error", err)
			return
		}
		s.Metrics.IncStatsComputations()
		respondJSON(w, http.StatusOK, comparison)
	}
}

// RankingHandler serves the goal or assist ranking depending on kind.
func (s *Server) RankingHandler(kind league.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRankingLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				log.Warn("Invalid 'limit' parameter provided. Using default.", "limit_param", limitStr)
			} else {
				limit = parsed
			}
		}

		var entries any
		var err error
		switch kind {
		case league.EventAssist:
			entries, err = s.Stats.RankByAssists(limit)
		default:
			entries, err = s.Stats.RankByGoals(limit)
		}
		if err != nil {
			http.Error(w, "Failed to compute ranking", http.StatusInternalServerError)
			log.Error("Failed to compute ranking", "kind", kind, "error", err)
			return
		}
		s.Metrics.IncRankingsServed()
		respondJSON(w, http.StatusOK, entries)
	}
}

func (s *Server) ListClubsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubs, err := s.Store.ListClubs()
		if err != nil {
			http.Error(w, "Failed to get clubs", http.StatusInternalServerError)
			log.Error("Failed to get clubs from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, clubs)
	}
}

func (s *Server) ListChampionshipsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		championships, err := s.Store.ListChampionships()
		if err != nil {
			http.Error(w, "Failed to get championships", http.StatusInternalServerError)
			log.Error("Failed to get championships from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, championships)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.ListMatches()
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) CreateClubHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params league.CreateClubParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		club, err := s.Store.CreateClub(params)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Info("Created club", "id", club.ID, "name", club.Name)
		respondJSON(w, http.StatusCreated, club)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params league.CreatePlayerParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		player, err := s.Store.CreatePlayer(params)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Info("Created player", "id", player.ID, "name", player.Name)
		respondJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) CreateChampionshipHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params league.CreateChampionshipParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		championship, err := s.Store.CreateChampionship(params)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Info("Created championship", "id", championship.ID, "name", championship.Name)
		respondJSON(w, http.StatusCreated, championship)
	}
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params league.CreateMatchParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		match, err := s.Store.CreateMatch(params)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Info("Created match", "id", match.ID, "home", match.HomeClubID, "away", match.AwayClubID)
		respondJSON(w, http.StatusCreated, match)
	}
}

func (s *Server) FinalizeMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID        string `json:"id"`
			HomeScore int    `json:"home_score"`
			AwayScore int    `json:"away_score"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := s.Store.FinalizeMatch(req.ID, req.HomeScore, req.AwayScore); err != nil {
			if errors.Is(err, league.ErrNotFound) {
				http.Error(w, "Match not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Info("Finalized match", "id", req.ID, "home_score", req.HomeScore, "away_score", req.AwayScore)

		match, err := s.Store.GetMatch(req.ID)
		if err != nil {
			// The finalize itself succeeded; only the re-read for the
			// response body failed.
			log.Error("Failed to read back finalized match", "match", req.ID, "error", err)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "Match finalized.")
			return
		}

		isDryRun := isDryRunFromContext(r)
		home := s.clubName(match.HomeClubID)
		away := s.clubName(match.AwayClubID)
		if err := s.Notifier.AnnounceResult(home, away, match.HomeScore, match.AwayScore, isDryRun); err != nil {
			log.Error("Failed to announce result", "match", req.ID, "error", err)
		}

		respondJSON(w, http.StatusOK, match)
	}
}

func (s *Server) RecordEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params league.RecordEventParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		event, err := s.Store.RecordEvent(params)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.Metrics.IncEventsRecorded()
		log.Info("Recorded event", "id", event.ID, "kind", event.Kind, "player", event.PlayerID)

		if event.Kind == league.EventGoal {
			isDryRun := isDryRunFromContext(r)
			playerName := event.PlayerID
			clubName := ""
			if player, err := s.Store.GetPlayer(event.PlayerID); err == nil {
				playerName = player.Name
				clubName = s.clubName(player.ClubID)
			}
			if err := s.Notifier.AnnounceGoal(playerName, clubName, event.Minute, isDryRun); err != nil {
				log.Error("Failed to announce goal", "event", event.ID, "error", err)
			}
		}

		respondJSON(w, http.StatusCreated, event)
	}
}

func (s *Server) ListUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := s.Auth.ListUsers()
		if err != nil {
			http.Error(w, "Failed to get users", http.StatusInternalServerError)
			log.Error("Failed to get users", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, users)
	}
}

// ExportHandler dumps every collection as a single MessagePack document.
func (s *Server) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		export := struct {
			Clubs         []league.Club         `msgpack:"clubs"`
			Players       []league.Player       `msgpack:"players"`
			Championships []league.Championship `msgpack:"championships"`
			Matches       []league.Match        `msgpack:"matches"`
			Events        []league.Event        `msgpack:"events"`
		}{}

		var err error
		if export.Clubs, err = s.Store.ListClubs(); err == nil {
			if export.Players, err = s.Store.ListPlayers(); err == nil {
				if export.Championships, err = s.Store.ListChampionships(); err == nil {
					if export.Matches, err = s.Store.ListMatches(); err == nil {
						export.Events, err = s.Store.ListAllEvents()
					}
				}
			}
		}
		if err != nil {
			http.Error(w, "Failed to export data", http.StatusInternalServerError)
			log.Error("Failed to export data", "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/msgpack")
		w.WriteHeader(http.StatusOK)
		if err := msgpack.NewEncoder(w).Encode(export); err != nil {
			log.Error("Failed to encode export", "error", err)
		}
	}
}

// clubName resolves a club id for announcements, falling back to the raw id
// when the reference dangles.
func (s *Server) clubName(id string) string {
	if id == "" {
		return ""
	}
	club, err := s.Store.GetClub(id)
	if err != nil {
		return id
	}
	return club.Name
}

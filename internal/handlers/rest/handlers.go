package rest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Yunus705/alpharush/internal/services/game"
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{Status: "ok"})
}

// handleGetRoom handles GET /api/rooms/{roomID}
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	if roomID == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_ROOM_ID", "Room ID is required")
		return
	}

	out, err := s.service.GetRoom(r.Context(), &game.GetRoomInput{RoomID: roomID})
	if err != nil {
		if errors.Is(err, game.ErrRoomNotFound) {
			s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		} else {
			s.logger.Error().Err(err).Str("room", roomID).Msg("failed to get room")
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	s.sendSuccess(w, out.Room)
}

// handleExport handles GET /api/rooms/{roomID}/export. The default format
// is JSON; ?format=csv streams the same rows as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	if roomID == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_ROOM_ID", "Room ID is required")
		return
	}

	out, err := s.service.ExportAnswers(r.Context(), &game.ExportAnswersInput{RoomID: roomID})
	if err != nil {
		if errors.Is(err, game.ErrRoomNotFound) {
			s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		} else {
			s.logger.Error().Err(err).Str("room", roomID).Msg("failed to export answers")
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		s.writeCSV(w, roomID, out.Rows)
		return
	}

	s.sendSuccess(w, out.Rows)
}

// writeCSV renders export rows as a CSV attachment
func (s *Server) writeCSV(w http.ResponseWriter, roomID string, rows []game.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+roomID+`-answers.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"round", "letter", "player_id", "player_name", "category", "answer", "invalidated", "points"})
	for _, row := range rows {
		cw.Write([]string{
			strconv.Itoa(row.Round),
			row.Letter,
			row.PlayerID,
			row.PlayerName,
			string(row.Category),
			row.Answer,
			strconv.FormatBool(row.Invalidated),
			strconv.Itoa(row.Points),
		})
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		s.logger.Error().Err(err).Str("room", roomID).Msg("failed to write csv export")
	}
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

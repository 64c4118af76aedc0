package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"dagenreels/internal/convert"
	"dagenreels/internal/jsonutil"
)

// videoFilename is the attachment name the endpoint suggests.
const videoFilename = "reel.mp4"

// handleConvert implements GET /api/convert?url=...&format=mp4|json.
func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := RequestIDFromContext(ctx)

	article := strings.TrimSpace(r.URL.Query().Get("url"))
	if article == "" {
		writeDetail(w, http.StatusBadRequest, "missing url parameter")
		return
	}
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "mp4"
	}

	text, err := s.conv.Fetch(ctx, article)
	if err != nil {
		log.Printf("server: [%s] fetch %s: %v", id, article, err)
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Failed to fetch article: %v", err))
		return
	}

	scenes := s.conv.Summarise(ctx, text)
	if format == "json" {
		if scenes == nil {
			scenes = []string{}
		}
		writeJSON(w, http.StatusOK, convert.ScenesResponse{URL: article, Scenes: scenes})
		return
	}

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		log.Printf("server: [%s] client gone while waiting for a render slot: %v", id, ctx.Err())
		return
	}

	video, err := s.conv.Render(ctx, scenes)
	if err != nil {
		log.Printf("server: [%s] render %s: %v", id, article, err)
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate video: %v", err))
		return
	}
	defer video.Close()

	f, err := os.Open(video.Path)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate video: %v", err))
		return
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate video: %v", err))
		return
	}

	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", videoFilename))
	http.ServeContent(w, r, videoFilename, fi.ModTime(), f)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := jsonutil.Encode(w, v); err != nil {
		log.Printf("server: encode response: %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dagenreels/internal/config"
	"dagenreels/internal/reel"
	"dagenreels/internal/server"
	"dagenreels/internal/trace"
)

func main() {
	var envFile string
	flag.StringVar(&envFile, "env", ".env", "dotenv file to load before reading the environment (missing is fine)")
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	exp, err := trace.NewOTLPExporter(context.Background())
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	if exp.Enabled() {
		log.Printf("tracing: exporting spans via OTLP")
	}

	pipeline := &reel.Pipeline{
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		Media:     reel.NewFFmpeg(cfg.FFmpegPath, cfg.FFprobePath),
		Brand:     reel.DefaultBrand(),
		MaxScenes: cfg.MaxScenes,
		WorkDir:   cfg.WorkDir,
	}
	if el := reel.NewElevenLabs(cfg.ElevenLabsAPIKey, cfg.VoiceID, cfg.ModelID); el != nil {
		pipeline.Speaker = el
	} else {
		log.Printf("ELEVENLABS_API_KEY not set: narration will be silent")
	}

	handler := server.NewServer(pipeline, server.Options{
		MaxRenders: cfg.MaxRenders,
		Brand:      pipeline.Brand,
	})

	port := strconv.Itoa(cfg.Port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// No WriteTimeout: a render holds the response open until the video is ready.
		IdleTimeout: 60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("reelsd listening on :%s (max renders %d, max scenes %d)", port, cfg.MaxRenders, cfg.MaxScenes)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-done
	log.Println("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = srv.Close()
	}
	if err := exp.Shutdown(ctx); err != nil {
		log.Printf("trace shutdown: %v", err)
	}
	log.Println("server stopped")
}

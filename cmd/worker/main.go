package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"edutrack/internal/config"
	"edutrack/internal/model"
	"edutrack/internal/notify"
	"edutrack/internal/queue"
	"edutrack/internal/store"
)

// Worker consumes check-in events and turns them into dashboard
// notifications.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "edutrack:checkins")
	}

	feed := notify.NewFeed(redisClient.Client, "edutrack:notifications")

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for messages...")
	for msg := range messages {
		if msg.Type != "checkin" {
			continue
		}

		var evt model.CheckinEvent
		if err := json.Unmarshal(msg.Body, &evt); err != nil {
			log.Printf("skipping malformed checkin event: %v", err)
			continue
		}

		note := fmt.Sprintf("Student %s checked in on bus %s at %s",
			evt.StudentID, evt.BusID, evt.CheckinTime.Format("15:04"))
		if err := feed.Push(ctx, note); err != nil {
			log.Printf("notification push failed: %v", err)
			continue
		}
		log.Printf("notified: %s", note)
	}

	log.Println("worker stopped")
}

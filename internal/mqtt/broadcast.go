// Package mqtt pushes schedule changes to the lobby and door display
// boards. Boards subscribe to kursbuero/courses/<id>/schedule and render
// the day plan they receive; publishing is fire-and-forget and the whole
// package is a no-op when no broker is configured.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/schedule"
)

var client mqtt.Client

var connectHandler mqtt.OnConnectHandler = func(c mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(c mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// Init connects to the broker. An empty brokerURL disables broadcasting.
func Init(brokerURL, clientID string) error {
	if brokerURL == "" {
		log.Info().Msg("MQTT broker not configured, schedule broadcasting disabled")
		return nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client = mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return nil
}

type schedulePayload struct {
	CourseID    int                   `json:"course_id"`
	PublishedAt time.Time             `json:"published_at"`
	Sessions    []schedule.Occurrence `json:"sessions"`
}

// PublishCourseSchedule broadcasts the recomputed upcoming sessions of a
// course to its board topic.
func PublishCourseSchedule(courseID int, occs []schedule.Occurrence) {
	if client == nil {
		return
	}

	payload, err := json.Marshal(schedulePayload{
		CourseID:    courseID,
		PublishedAt: time.Now().UTC(),
		Sessions:    occs,
	})
	if err != nil {
		return
	}

	topic := fmt.Sprintf("kursbuero/courses/%d/schedule", courseID)
	token := client.Publish(topic, 1, true, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", topic).Msg("failed to publish schedule update")
		return
	}
	log.Info().Int("course_id", courseID).Int("sessions", len(occs)).Msg("published schedule update")
}

// Cleanup disconnects from the broker.
func Cleanup() {
	if client != nil {
		client.Disconnect(250)
		log.Info().Msg("MQTT client disconnected")
	}
}

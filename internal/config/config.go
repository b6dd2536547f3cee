package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment configuration for the demo binary.
type Config struct {
	// Port for the local inspection surface.
	Port string
	// AMQPURL enables store event egress when set. Empty means noop.
	AMQPURL string
	// AMQPExchange is the topic exchange for store events.
	AMQPExchange string
	// Environment tags emitted events (dev, staging, ...).
	Environment string
	// EnableDebugRoutes exposes the /debug endpoints.
	EnableDebugRoutes bool

	// Simulated ingress tuning.
	IngressInterval    time.Duration
	IngressProbability float64
	IngressMinDelay    time.Duration
	IngressMaxDelay    time.Duration
}

// Load reads configuration from the environment, with a .env file as
// optional source.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Config{
		Port:               getEnv("PORT", "8083"),
		AMQPURL:            getEnv("AMQP_URL", ""),
		AMQPExchange:       getEnv("AMQP_EXCHANGE", "chat_events"),
		Environment:        getEnv("ENVIRONMENT", "dev"),
		EnableDebugRoutes:  getBool("DEBUG_ROUTES", false),
		IngressInterval:    getDuration("INGRESS_INTERVAL", 10*time.Second),
		IngressProbability: getFloat("INGRESS_PROBABILITY", 0.3),
		IngressMinDelay:    getDuration("INGRESS_MIN_DELAY", time.Second),
		IngressMaxDelay:    getDuration("INGRESS_MAX_DELAY", 3*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		log.Printf("invalid bool for %s: %q, using %v", key, val, fallback)
		return fallback
	}
	return parsed
}

func getFloat(key string, fallback float64) float64 {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Printf("invalid float for %s: %q, using %v", key, val, fallback)
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("invalid duration for %s: %q, using %v", key, val, fallback)
		return fallback
	}
	return parsed
}

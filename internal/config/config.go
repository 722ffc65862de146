package config

import (
	"os"
	"strconv"
)

// Config holds server and quiz configuration loaded from the environment.
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string // empty means in-memory sessions (dev/tests)
	HTTPPort  string

	// QuestionBankPath points at the static question JSON. Empty uses the
	// embedded default bank.
	QuestionBankPath string

	// StaticQuestionThreshold is how many static answers switch the call to
	// the refinement phase. 3 for quick testing; raise for the full quiz.
	StaticQuestionThreshold int

	// GatherTimeoutSec is how long a Gather waits for a keypress.
	GatherTimeoutSec int

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	// PublicBaseURL is the externally reachable base for Twilio webhooks,
	// e.g. an ngrok URL during development.
	PublicBaseURL string
}

// Load reads configuration from the environment with dev defaults.
func Load() *Config {
	return &Config{
		MongoURI:  getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnvOrDefault("MONGO_DBNAME", "apnidisha"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		HTTPPort:  getEnvOrDefault("PORT", "8080"),

		QuestionBankPath:        os.Getenv("QUESTION_BANK_PATH"),
		StaticQuestionThreshold: getEnvInt("STATIC_QUESTION_THRESHOLD", 3),
		GatherTimeoutSec:        getEnvInt("GATHER_TIMEOUT_SEC", 15),

		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		PublicBaseURL:     os.Getenv("PUBLIC_BASE_URL"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

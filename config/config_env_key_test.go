package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	yamlTree := map[string]any{
		"auth": map[string]any{
			"bcryptCost": 12,
		},
		"storage": map[string]any{
			"maxUploadSize": "5MB",
			"minio": map[string]any{
				"accessKey": "",
				"useSsl":    false,
			},
		},
		"pubsub": map[string]any{
			"rabbitmq": map[string]any{
				"routingKey": "listing.moderated",
				"queue":      "",
			},
		},
		"worker": map[string]any{
			"pushAudience": "",
		},
	}

	cases := map[string]string{
		"STORAGE_MINIO_ACCESSKEY":    "storage.minio.accessKey",
		"STORAGE_MINIO_USESSL":       "storage.minio.useSsl",
		"STORAGE_MAXUPLOADSIZE":      "storage.maxUploadSize",
		"PUBSUB_RABBITMQ_ROUTINGKEY": "pubsub.rabbitmq.routingKey",
		"PUBSUB_RABBITMQ_QUEUE":      "pubsub.rabbitmq.queue",
		"WORKER_PUSHAUDIENCE":        "worker.pushAudience",
		// past a leaf the raw lowercase segments are kept
		"AUTH_BCRYPTCOST_EXTRA": "auth.bcryptCost.extra",
		// unknown sections keep the lowercase form
		"GAMES_MAXIMAGES": "games.maximages",
		"WORKER__PORT":    "worker.port",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, yamlTree))
		})
	}
}

func TestCanonicalizeEnvKey_EmptyTree(t *testing.T) {
	assert.Equal(t, "http.port", canonicalizeEnvKey("HTTP_PORT", nil))
}

package domain

import "time"

type Secret struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidateSecretKey(key string) error {
	return ValidateIdentifier("key", key)
}

// SecretsAsEnv returns KEY=value pairs in the order given.
func SecretsAsEnv(secrets []Secret) []string {
	env := make([]string, 0, len(secrets))
	for _, secret := range secrets {
		env = append(env, secret.Key+"="+secret.Value)
	}

	return env
}

package cache

import (
	"crypto/tls"
	"sync"

	"cofoundry/internal/config"

	"github.com/valkey-io/valkey-go"
)

var (
	once         sync.Once
	valkeyClient valkey.Client
)

// GetCache returns the shared Valkey client. In testing mode it returns
// nil; cache users treat a nil client as "cache disabled" and fall
// through to the database.
func GetCache() valkey.Client {
	once.Do(func() {
		env := config.GetEnv()

		if env.IsTesting {
			return
		}

		options := valkey.ClientOption{
			InitAddress: []string{env.ValkeyHost + ":" + env.ValkeyPort},
			Password:    env.ValkeyPassword,
			Username:    env.ValkeyUsername,
		}

		if env.ValkeyIsSsl {
			options.TLSConfig = &tls.Config{
				ServerName: env.ValkeyHost,
			}
		}

		client, err := valkey.NewClient(options)
		if err != nil {
			panic(err)
		}

		valkeyClient = client
	})

	return valkeyClient
}

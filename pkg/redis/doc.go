// Package redis connects sessionkit services to Redis.
//
// Connect parses a redis:// URL, pings the server and retries with a fixed
// interval until it answers or the connect timeout expires. Healthcheck returns
// a probe suitable for readiness endpoints. The resulting client is what
// session.NewRedisStore (or session.WithRedisClient) expects.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store, err := session.NewRedisStore(client, session.WithTTL(24*time.Hour))
package redis

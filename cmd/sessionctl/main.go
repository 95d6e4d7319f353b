// Command sessionctl generates session secrets, issues and inspects signed
// session tokens, and probes the configured session store.
//
// Configuration comes from the environment (see session.Config and redis.Config):
//
//	SESSION_BACKEND=signed SESSION_SECRET=... sessionctl sign -data '{"user_id":"42"}'
//	SESSION_SECRET=... sessionctl verify <token>
//	sessionctl keygen
//	SESSION_BACKEND=redis REDIS_URL=redis://localhost:6379/0 sessionctl probe
package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/redis"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

const usage = `usage: sessionctl <command> [flags]

commands:
  keygen   print a random secret for SESSION_SECRET
  sign     issue a signed token from a JSON object
  verify   verify a signed token and print its data
  probe    save, load and delete a sample session in the configured store
`

type commandKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		log.Fatalf("sessionctl: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	lg := logger.New(
		logger.WithOutput(stderr),
		logger.WithEnvironment(os.Getenv("APP_ENV"), "sessionctl"),
		logger.WithContextValue("command", commandKey{}),
	)
	ctx = context.WithValue(ctx, commandKey{}, cmd)

	switch cmd {
	case "keygen":
		return keygen(rest, stdout)
	case "sign":
		return sign(ctx, rest, stdout, lg)
	case "verify":
		return verify(ctx, rest, stdout, lg)
	case "probe":
		return probe(ctx, stdout, lg)
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func keygen(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	size := fs.Int("bytes", 32, "secret length in bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *size < 16 {
		return fmt.Errorf("secret must be at least 16 bytes, got %d", *size)
	}

	b := make([]byte, *size)
	if _, err := rand.Read(b); err != nil {
		return err
	}
	_, err := fmt.Fprintln(stdout, base64.RawURLEncoding.EncodeToString(b))
	return err
}

func sign(ctx context.Context, args []string, stdout io.Writer, lg *slog.Logger) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	raw := fs.String("data", "{}", "session values as a JSON object")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal([]byte(*raw), &values); err != nil {
		return fmt.Errorf("data must be a JSON object: %w", err)
	}

	store, err := signedStore(lg)
	if err != nil {
		return err
	}

	data := session.NewData()
	for k, v := range values {
		data.Set(k, v)
	}

	token, err := store.Save(ctx, "", data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, token)
	return err
}

func verify(ctx context.Context, args []string, stdout io.Writer, lg *slog.Logger) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("verify expects exactly one token")
	}

	store, err := signedStore(lg)
	if err != nil {
		return err
	}

	data, err := store.Load(ctx, fs.Arg(0))
	if err != nil {
		return fmt.Errorf("token rejected: %w", err)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func probe(ctx context.Context, stdout io.Writer, lg *slog.Logger) error {
	var cfg session.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	opts := []session.Option{session.WithLogger(lg)}
	if cfg.Backend == session.BackendRedis {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		opts = append(opts, session.WithRedisClient(client))
	}

	store, err := session.NewFromConfig(cfg, opts...)
	if err != nil {
		return err
	}

	start := time.Now()

	data := session.NewData()
	data.Set("probe", start.Unix())

	id, err := store.Save(ctx, "", data)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	loaded, err := store.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if got, ok := loaded.GetInt("probe"); !ok || int64(got) != start.Unix() {
		return errors.New("load: probe value mismatch")
	}

	if err := store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	lg.InfoContext(ctx, "session store probe succeeded",
		logger.Backend(string(cfg.Backend)),
		logger.Duration(time.Since(start)),
	)
	_, err = fmt.Fprintf(stdout, "ok backend=%s\n", cfg.Backend)
	return err
}

func signedStore(lg *slog.Logger) (*session.SignedStore, error) {
	var cfg session.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return session.NewSignedStore([]byte(cfg.Secret), cfg.MaxAge, session.WithLogger(lg))
}

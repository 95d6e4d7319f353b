// Package session associates a mutable bag of key-value state with a client
// interaction. It offers one Store contract with interchangeable back-ends:
//
//   - SignedStore: stateless. The token is the data plus an HMAC-SHA256 proof.
//     Nothing is kept server-side.
//   - MemoryStore: stateful. The client holds a random 64-hex id, data lives in
//     a process-local map.
//   - RedisStore: stateful. Same id format, data lives in Redis as JSON.
//
// The package never touches HTTP. The web layer extracts a token from the
// request, calls Load, hands the Data to application code, calls Save and writes
// the returned token back to the response.
//
// # Architecture
//
//	┌────────┐   token   ┌───────────┐  Load / Save  ┌────────────────────────┐
//	│ Client │ ────────► │ web layer │ ────────────► │ Store                  │
//	└────────┘           └───────────┘               │ signed | memory | redis│
//	                          │                      └────────────────────────┘
//	                          ▼
//	                     *session.Data
//
// # Usage
//
//	store, err := session.NewSignedStore([]byte(secret), 24*time.Hour)
//	if err != nil {
//	    return err
//	}
//
//	data, err := store.Load(ctx, token)
//	switch {
//	case errors.Is(err, session.ErrInvalid):
//	    data = session.NewData() // treat as anonymous
//	case err != nil:
//	    return err
//	case data == nil:
//	    data = session.NewData()
//	}
//
//	data.Set("user_id", "42")
//	if data.Modified() {
//	    token, err = store.Save(ctx, token, data)
//	}
//
// Typed reads never fail loudly:
//
//	userID, ok := session.Get[string](data, "user_id")
//
// Back-ends can also be chosen from configuration:
//
//	var cfg session.Config
//	config.MustLoad(&cfg)
//	store, err := session.NewFromConfig(cfg, session.WithRedisClient(client))
//
// # Token format
//
// A signed token is
//
//	base64url(json(data)) "." base64url(HMAC-SHA256(secret, base64url(json(data))))
//
// using the padded URL-safe alphabet. The JSON form of Data is
// {"data":{...},"modified":bool} with sorted keys, so equal data under the same
// secret always produces the same token. Signatures are compared in constant time.
//
// # Error Handling
//
//   - ErrInvalid       – malformed or tampered signed token; treat as "no session"
//   - ErrSerialization – payload could not be encoded or decoded; drop the session
//   - ErrStorage       – the backing store failed
//   - ErrExpired       – reserved for back-ends with their own expiry tracking
//
// Causes are attached with errors.Join, so match with errors.Is. Stateful stores
// report a missing session as (nil, nil), not as an error.
//
// # Expiry
//
// None of the shipped stores track expiry themselves: Cleanup always reports
// zero and ErrExpired is never returned. SignedStore records its max age without
// enforcing it; RedisStore hands the TTL to Redis.
package session

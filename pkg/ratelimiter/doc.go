// Package ratelimiter implements a token bucket limiter with an in-memory
// store and HTTP middleware.
//
// Each key owns a bucket holding up to Capacity tokens; RefillRate tokens are
// added every RefillInterval. A request consumes one token and is denied once
// the bucket is empty.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, keyFunc,
//		ratelimiter.WithDeniedHandler(onLimit),
//	))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited response, plus Retry-After on denial.
package ratelimiter

package controllers

import (
	"time"

	"mentorhub-chat/store"
)

// Store and TokenTTL are wired once in main, before the router starts
// serving. Nothing re-binds them mid-run.
var (
	Store    store.Store
	TokenTTL = 7 * 24 * time.Hour
)

package models

// HistoryLimit caps how many messages a single history read returns.
// Retention in the store is unbounded; only reads are bounded, to keep
// initial-load payloads small regardless of conversation age.
const HistoryLimit = 200

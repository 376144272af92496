package application

import "expvar"

// Counters published on /api/debug/vars.
var (
	groupsIndexed         = expvar.NewInt("groups_indexed")
	groupIndexFailures    = expvar.NewInt("group_index_failures")
	notificationsQueued   = expvar.NewInt("notifications_queued")
	notificationsFailed   = expvar.NewInt("notifications_failed")
	preferencesWriteFails = expvar.NewInt("preferences_write_failures")
)

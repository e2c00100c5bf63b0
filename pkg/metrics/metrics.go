package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// 投票状态迁移次数, transition 形如 none->upvoted
	VoteTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quorum_vote_transitions_total",
			Help: "Vote state transitions applied",
		},
		[]string{"target_kind", "transition"},
	)

	// 并发冲突被当作无变化处理的次数
	VoteConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quorum_vote_conflicts_total",
			Help: "Vote writes rejected by a concurrent change",
		},
		[]string{"target_kind"},
	)

	NotificationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quorum_notifications_created_total",
			Help: "Notifications inserted",
		},
		[]string{"type"},
	)

	NotificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quorum_notification_failures_total",
			Help: "Notification dispatches that failed and were skipped",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(VoteTransitions, VoteConflicts, NotificationsCreated, NotificationFailures)
}

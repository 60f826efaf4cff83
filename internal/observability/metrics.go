package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VotesCast counts successfully recorded poll ballots.
	VotesCast = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agora_votes_cast_total",
		Help: "Total number of poll ballots recorded",
	})

	// VotesRejected counts vote attempts that ended in a soft condition.
	VotesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_votes_rejected_total",
		Help: "Total number of vote attempts rejected, by reason",
	}, []string{"reason"})

	// FollowEvents counts follow/unfollow actions.
	FollowEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_follow_events_total",
		Help: "Total number of follow and unfollow actions",
	}, []string{"action"})

	// ArticlesPublished counts draft-to-published transitions.
	ArticlesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agora_articles_published_total",
		Help: "Total number of articles published",
	})

	// SearchQueries counts search requests by category.
	SearchQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_search_queries_total",
		Help: "Total number of search queries by category",
	}, []string{"category"})
)

package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_http_requests_total",
			Help: "Total number of HTTP requests processed by the inspection surface.",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
	messagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total number of messages appended to group logs.",
		},
		[]string{"source"},
	)
	messagesDeletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_deleted_total",
			Help: "Total number of message deletions, by scope.",
		},
		[]string{"scope"},
	)
	groupsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_groups_created_total",
			Help: "Total number of groups created.",
		},
	)
	unreadResetsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_unread_resets_total",
			Help: "Total number of unread counter resets via group selection.",
		},
	)
	ingressTicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_ingress_ticks_total",
			Help: "Total number of simulated ingress ticks, by outcome.",
		},
		[]string{"outcome"},
	)
	typingUsers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_typing_users",
			Help: "Number of users currently shown as typing in the active group.",
		},
	)
	eventPublishErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_event_publish_errors_total",
			Help: "Total number of store event publish errors.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		messagesTotal,
		messagesDeletedTotal,
		groupsCreatedTotal,
		unreadResetsTotal,
		ingressTicksTotal,
		typingUsers,
		eventPublishErrorsTotal,
	)
}

func HTTPMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func IncMessage(source string) {
	messagesTotal.WithLabelValues(source).Inc()
}

func IncMessageDeleted(scope string) {
	messagesDeletedTotal.WithLabelValues(scope).Inc()
}

func IncGroupCreated() {
	groupsCreatedTotal.Inc()
}

func IncUnreadReset() {
	unreadResetsTotal.Inc()
}

func IncIngressTick(outcome string) {
	ingressTicksTotal.WithLabelValues(outcome).Inc()
}

func SetTypingUsers(n int) {
	typingUsers.Set(float64(n))
}

func IncEventPublishError() {
	eventPublishErrorsTotal.Inc()
}

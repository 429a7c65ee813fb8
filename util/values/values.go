package values

type ContextKey string

const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	Failed         = "failed"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"
	SystemErr      = "Something went wrong, please try again later"
)

const (
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-Id"
)

const ContextTracingKey = ContextKey("tracing-context")

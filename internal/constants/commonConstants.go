package constants

type (
	RequestSource string
	APIStatus     string
	CachePrefix   string
)

const (
	RequestSourceAPI       RequestSource = "API"
	RequestSourceWebClient RequestSource = "WEB_CLIENT"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixStudioConfig CachePrefix = "STUDIO_CFG"
	CachePrefixShowList     CachePrefix = "SHOW_LIST_"
)

// Label of the residual row every allocation run ends with.
const NetProfitLabel = "Operation Net Profit"

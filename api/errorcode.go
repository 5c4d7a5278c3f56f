package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1500: "cannot fetch corona data",
		1501: "cannot draw charts",
	}

	errorInternalServer = errorJSON(999)

	errorFetchCoronaData = errorJSON(1500)
	errorDrawCharts      = errorJSON(1501)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

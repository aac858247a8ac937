package oracle

import (
	"errors"
	"time"
)

var (
	ErrOracleStopped    = errors.New("oracle is shut down")
	ErrNoCallback       = errors.New("oracle has no callback bound")
	ErrDuplicateRequest = errors.New("randomness already requested for id")
)

// HandleBytes is how much of the proof is exposed as the request handle
const HandleBytes = 16

// Callback wire format
const (
	HeaderOracleID        = "X-Oracle-ID"
	HeaderOracleSignature = "X-Oracle-Signature"

	ParamRequestID   = "request_id"
	ParamRandomValue = "random_value"
	ParamCallbackURL = "callback_url"
	ParamHandle      = "handle"
	// ParamOracleID carries the X-Oracle-ID header into the signed set only
	ParamOracleID = "oracle_id"
)

const DefaultHTTPTimeout = 10 * time.Second

const (
	LogMsgRandomnessRequested = "Randomness requested"
	LogMsgDelivered           = "Randomness delivered"
	LogMsgDeliveryRejected    = "Randomness delivery rejected by registry"
	LogMsgDeliveryCancelled   = "Cancelled pending randomness delivery"
	LogMsgShutdownTimeout     = "Oracle shutdown timeout"
)

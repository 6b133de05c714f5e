package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on inbound requests.
const AccessTokenHeaderName = "access_token"

// AuthorizationHeaderName is the fallback metadata key ("Bearer <token>").
const AuthorizationHeaderName = "authorization"

// ISOTimestampLayout is the fixed-width ISO-8601 layout used for
// identity-provider updatedAt values. Lexicographic order of strings in this
// layout equals chronological order.
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

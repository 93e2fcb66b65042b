// Package config handles configuration loading for employee-api.
//
// Configuration is loaded from a YAML file with ${VAR_NAME} environment
// variable expansion:
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//
//	database:
//	  path: "/var/lib/employee-api/api.db"
//
//	auth:
//	  jwt_secret: "${EMPLOYEE_API_JWT_SECRET}"
//	  token_lifetime_minutes: 10
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// Load() validates the result and fails fast; in particular a missing
// auth.jwt_secret is a startup error, never a runtime one.
package config

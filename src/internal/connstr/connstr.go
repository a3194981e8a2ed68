// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package connstr

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Query parameter names understood by the EventStoreDB client.
const (
	ParamTLSCAFile    = "tlsCaFile"
	ParamUserCertFile = "userCertFile"
	ParamUserKeyFile  = "userKeyFile"
)

// ErrMissingParameter indicates that a required query parameter is absent
// from the connection string.
var ErrMissingParameter = errors.New("connstr: missing connection string parameter")

// Resolved is a connection string with folder-qualified user certificate
// paths and the CA file that was split out of it.
type Resolved struct {
	// ConnectionString no longer carries tlsCaFile.
	ConnectionString string
	// CAFile is the tlsCaFile value joined with the certificate folder.
	CAFile string
}

// Resolve rewrites connectionString so that the user certificate and key
// filenames point into certFolder, and extracts the CA file.
//
// The tlsCaFile segment is removed in place. When it was the first parameter
// the leading '?' is kept for the parameters that follow; when it was a later
// one the following '&' boundary is kept. A connection string left with no
// parameters loses its '?'.
//
// Returns an error wrapping [ErrMissingParameter] if tlsCaFile, userCertFile
// or userKeyFile is absent.
func Resolve(connectionString, certFolder string) (Resolved, error) {
	start := strings.Index(connectionString, "?"+ParamTLSCAFile+"=")
	if start < 0 {
		start = strings.Index(connectionString, "&"+ParamTLSCAFile+"=")
	}
	if start < 0 {
		return Resolved{}, fmt.Errorf("%w: %s parameter is required", ErrMissingParameter, ParamTLSCAFile)
	}

	valueStart := start + len("?"+ParamTLSCAFile+"=")
	end := strings.IndexByte(connectionString[valueStart:], '&')
	if end >= 0 {
		end += valueStart
	}

	var caFile string
	if end < 0 {
		caFile = connectionString[valueStart:]
	} else {
		caFile = connectionString[valueStart:end]
	}
	if caFile == "" {
		return Resolved{}, fmt.Errorf("%w: %s parameter is empty", ErrMissingParameter, ParamTLSCAFile)
	}

	rewritten := removeSegment(connectionString, start, end)
	prefix := folderPrefix(certFolder)
	rewritten = strings.ReplaceAll(rewritten, ParamUserCertFile+"=", ParamUserCertFile+"="+prefix)
	rewritten = strings.ReplaceAll(rewritten, ParamUserKeyFile+"=", ParamUserKeyFile+"="+prefix)

	for _, param := range []string{ParamUserCertFile, ParamUserKeyFile} {
		if !strings.Contains(rewritten, param+"=") {
			return Resolved{}, fmt.Errorf("%w: %s parameter is required", ErrMissingParameter, param)
		}
	}

	return Resolved{
		ConnectionString: rewritten,
		CAFile:           filepath.Join(certFolder, caFile),
	}, nil
}

// removeSegment cuts the parameter that begins at start (on its '?' or '&')
// and ends at end (the next '&', or -1 for end of string).
func removeSegment(s string, start, end int) string {
	if end < 0 {
		// Last parameter: drop its separator too, so no dangling '?' or '&'.
		return s[:start]
	}
	if s[start] == '?' {
		return s[:start+1] + s[end+1:]
	}
	return s[:start] + s[end:]
}

// folderPrefix returns certFolder with exactly one trailing slash, or the
// empty string when no folder is given.
func folderPrefix(certFolder string) string {
	if certFolder == "" || strings.HasSuffix(certFolder, "/") {
		return certFolder
	}
	return certFolder + "/"
}

// Credentials are the individual connection values accepted by the
// credentials command.
type Credentials struct {
	Username string
	Password string
	Host     string
	CertFile string
	KeyFile  string
}

// FromCredentials assembles an esdb:// connection string from c.
// The username and password are escaped as URL userinfo.
func FromCredentials(c Credentials) string {
	var sb strings.Builder
	sb.WriteString("esdb://")
	sb.WriteString(url.UserPassword(c.Username, c.Password).String())
	sb.WriteByte('@')
	sb.WriteString(c.Host)
	sb.WriteString("?" + ParamUserCertFile + "=" + c.CertFile)
	sb.WriteString("&" + ParamUserKeyFile + "=" + c.KeyFile)
	return sb.String()
}

// Qualify joins every certificate file parameter of connectionString with
// certFolder using structured query handling. All three of tlsCaFile,
// userCertFile and userKeyFile must be present.
//
// The returned query is re-encoded, so parameter order is normalised.
func Qualify(connectionString, certFolder string) (string, error) {
	parsed, err := url.Parse(connectionString)
	if err != nil {
		return "", fmt.Errorf("invalid connection string: %w", err)
	}

	query := parsed.Query()
	for _, param := range []string{ParamUserCertFile, ParamUserKeyFile, ParamTLSCAFile} {
		value := query.Get(param)
		if value == "" {
			return "", fmt.Errorf("%w: %s parameter is required", ErrMissingParameter, param)
		}
		query.Set(param, filepath.Join(certFolder, value))
	}

	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// Redact hides the password of the userinfo part so the connection string
// can be logged.
func Redact(connectionString string) string {
	scheme := strings.Index(connectionString, "://")
	if scheme < 0 {
		return connectionString
	}
	authStart := scheme + len("://")
	at := strings.IndexByte(connectionString[authStart:], '@')
	if at < 0 {
		return connectionString
	}
	userinfo := connectionString[authStart : authStart+at]
	colon := strings.IndexByte(userinfo, ':')
	if colon < 0 {
		return connectionString
	}
	return connectionString[:authStart+colon+1] + "***" + connectionString[authStart+at:]
}

// Param returns the value of the first name parameter of connectionString.
// Like [Resolve] it matches "?name=" or "&name=" literally, so names are
// case-sensitive and values are not unescaped.
func Param(connectionString, name string) (string, bool) {
	start := strings.Index(connectionString, "?"+name+"=")
	if start < 0 {
		start = strings.Index(connectionString, "&"+name+"=")
	}
	if start < 0 {
		return "", false
	}
	value := connectionString[start+len(name)+2:]
	if end := strings.IndexByte(value, '&'); end >= 0 {
		value = value[:end]
	}
	return value, true
}

package git

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/hydradatabase/autolink/internal/output"
)

// BaseURL converts a git remote URL into the https URL of the repository's
// web page. Local paths and file:// remotes are rejected.
func BaseURL(remote string) (string, error) {
	remote = strings.TrimSpace(remote)

	ep, err := transport.NewEndpoint(remote)
	if err != nil {
		return "", output.NewUserErrorWithCause(fmt.Sprintf("parsing remote URL %q: %v", remote, err), err)
	}

	host := ep.Host
	switch ep.Protocol {
	case "https", "http":
		// Keep an explicit port: self-hosted forges often serve the web UI on it.
		if ep.Port != 0 && !defaultPort(ep.Protocol, ep.Port) {
			host = net.JoinHostPort(ep.Host, strconv.Itoa(ep.Port))
		}
	case "ssh", "git", "git+ssh", "ssh+git":
		// The ssh/git port says nothing about where the web UI lives.
	default:
		return "", notHosted(remote)
	}

	path := strings.Trim(ep.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	path = strings.TrimSuffix(path, "/")
	if host == "" || path == "" {
		return "", output.NewUserError(fmt.Sprintf("remote URL %q has no host or repository path", remote))
	}
	return "https://" + host + "/" + path, nil
}

func defaultPort(protocol string, port int) bool {
	return (protocol == "https" && port == 443) || (protocol == "http" && port == 80)
}

func notHosted(remote string) error {
	return output.NewUserError(fmt.Sprintf("remote URL %q is not a hosted repository", remote))
}

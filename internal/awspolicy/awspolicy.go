// Package awspolicy builds the small IAM policy documents this program
// attaches: a service trust policy and single-action grants.
package awspolicy

import "encoding/json"

const version = "2012-10-17"

// Statement is one IAM policy statement.
type Statement struct {
	Sid       string            `json:"Sid,omitempty"`
	Effect    string            `json:"Effect"`
	Principal map[string]string `json:"Principal,omitempty"`
	Action    []string          `json:"Action"`
	Resource  []string          `json:"Resource,omitempty"`
}

// Document is an IAM policy document.
type Document struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// JSON renders the document in the form the provider accepts.
func (d Document) JSON() (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Trust is an assume-role policy trusting exactly one service principal.
func Trust(service string) Document {
	return Document{
		Version: version,
		Statement: []Statement{{
			Effect:    "Allow",
			Principal: map[string]string{"Service": service},
			Action:    []string{"sts:AssumeRole"},
		}},
	}
}

// Scoped grants exactly one action on exactly one resource.
func Scoped(action, resourceArn string) Document {
	return Document{
		Version: version,
		Statement: []Statement{{
			Effect:   "Allow",
			Action:   []string{action},
			Resource: []string{resourceArn},
		}},
	}
}

// Package crmclient wires configuration, transport, and authentication into
// a ready-to-use crm.Client.
//
// The zero-configuration path talks to the public resource manager endpoint:
//
//	cli, err := crmclient.NewWithToken(os.Getenv("CRM_TOKEN"))
//
// Supplying a crm.Config gives full control over endpoint, credentials,
// retry tuning, and logging:
//
//	cli, err := crmclient.New(&crm.Config{
//	  APIEndpoint: "https://cloudresourcemanager.example.internal",
//	  TokenSource: source,
//	  RetryMax:    5,
//	  ProjectID:   "my-default-project",
//	})
package crmclient

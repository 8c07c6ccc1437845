package helius

// Cluster identifies the Solana cluster a Client targets. The cluster
// selects both the REST API host and the JSON-RPC host.
type Cluster string

const (
	// ClusterMainnetBeta targets the production cluster.
	ClusterMainnetBeta Cluster = "mainnet-beta"

	// ClusterDevnet targets the public development cluster.
	ClusterDevnet Cluster = "devnet"
)

// valid reports whether the cluster is one of the supported values.
func (c Cluster) valid() bool {
	switch c {
	case ClusterMainnetBeta, ClusterDevnet:
		return true
	}

	return false
}

// restBaseURL returns the root URL of the cluster's REST API.
func (c Cluster) restBaseURL() string {
	if c == ClusterDevnet {
		return "https://api-devnet.helius.xyz"
	}

	return "https://api.helius.xyz"
}

// rpcBaseURL returns the root URL of the cluster's JSON-RPC endpoint.
func (c Cluster) rpcBaseURL() string {
	if c == ClusterDevnet {
		return "https://devnet.helius-rpc.com"
	}

	return "https://mainnet.helius-rpc.com"
}

// Package config loads the process configuration once at startup. The
// resulting value is immutable and passed explicitly into every component
// constructor; nothing reads ambient configuration later.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/haisapan/ethereum-trading-mcp-server/internal/numeric"
)

// Mainnet Uniswap V2 deployment, overridable for other networks and forks.
const (
	defaultFactory = "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f"
	defaultRouter  = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"
	defaultWETH    = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

	// Known high-balance mainnet address used as the simulation sender when
	// neither the caller nor the config supplies one. Simulations are
	// read-only; a funded sender just keeps token contracts from rejecting
	// the call before it reaches the interesting revert.
	defaultSimulationAddress = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
)

// Config holds the full application configuration.
type Config struct {
	RPCURL  string `yaml:"rpc_url"`
	ChainID uint64 `yaml:"chain_id"`
	// PrivateKey optionally derives the default simulation sender. It is
	// never used to sign anything that leaves the process.
	PrivateKey string `yaml:"private_key"`

	FactoryAddress string `yaml:"factory_address"`
	RouterAddress  string `yaml:"router_address"`
	WETHAddress    string `yaml:"weth_address"`

	FeeBps             uint32 `yaml:"fee_bps"`
	DefaultSlippageBps uint32 `yaml:"default_slippage_bps"`
	MaxImpactBps       uint32 `yaml:"max_impact_bps"`

	TestMode bool `yaml:"test_mode"`
	// TestBalance is a decimal string, not a float, so the fixed-point
	// invariant holds even for canned data.
	TestBalance string `yaml:"test_balance"`

	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	CallTimeout       time.Duration `yaml:"call_timeout"`
	ReserveCacheTTL   time.Duration `yaml:"reserve_cache_ttl"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

// Load reads the config from an optional YAML file, applies environment
// overrides (a .env file is honored if present), fills defaults and
// validates. Path may be empty for an env-only configuration.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "os.Open")
		}
		defer func() { _ = f.Close() }()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, "yaml decode")
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.RPCURL, "ETHEREUM_RPC_URL")
	setUint64(&c.ChainID, "CHAIN_ID")
	setString(&c.PrivateKey, "ETH_PRIVATE_KEY")
	setString(&c.FactoryAddress, "UNISWAP_V2_FACTORY")
	setString(&c.RouterAddress, "UNISWAP_V2_ROUTER")
	setString(&c.WETHAddress, "WETH_ADDRESS")
	setUint32(&c.FeeBps, "POOL_FEE_BPS")
	setUint32(&c.DefaultSlippageBps, "DEFAULT_SLIPPAGE_BPS")
	setUint32(&c.MaxImpactBps, "MAX_IMPACT_BPS")
	setBool(&c.TestMode, "TEST_MODE")
	setString(&c.TestBalance, "TEST_BALANCE")
	setString(&c.ListenAddr, "LISTEN_ADDR")
	setString(&c.LogLevel, "LOG_LEVEL")
	setBool(&c.LogJSON, "LOG_JSON_FORMAT")
}

func (c *Config) applyDefaults() {
	const defaultTimeout = 5 * time.Second

	if c.ChainID == 0 {
		c.ChainID = 1
	}
	if c.FactoryAddress == "" {
		c.FactoryAddress = defaultFactory
	}
	if c.RouterAddress == "" {
		c.RouterAddress = defaultRouter
	}
	if c.WETHAddress == "" {
		c.WETHAddress = defaultWETH
	}
	if c.FeeBps == 0 {
		c.FeeBps = 30
	}
	if c.DefaultSlippageBps == 0 {
		c.DefaultSlippageBps = 50
	}
	if c.MaxImpactBps == 0 {
		c.MaxImpactBps = 5000
	}
	if c.TestBalance == "" {
		c.TestBalance = "100"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":1337"
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 8 * time.Second
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.CallTimeout == 0 {
		c.CallTimeout = defaultTimeout
	}
	if c.ReserveCacheTTL == 0 {
		c.ReserveCacheTTL = 3 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if !c.TestMode && c.RPCURL == "" {
		return errors.New("rpc_url is required outside test mode")
	}
	if c.FeeBps >= 10000 {
		return errors.Errorf("fee_bps %d must be below 10000", c.FeeBps)
	}
	if c.DefaultSlippageBps >= 10000 {
		return errors.Errorf("default_slippage_bps %d must be below 10000", c.DefaultSlippageBps)
	}
	if c.MaxImpactBps > 10000 {
		return errors.Errorf("max_impact_bps %d must not exceed 10000", c.MaxImpactBps)
	}
	for name, addr := range map[string]string{
		"factory_address": c.FactoryAddress,
		"router_address":  c.RouterAddress,
		"weth_address":    c.WETHAddress,
	} {
		if !common.IsHexAddress(addr) {
			return errors.Errorf("%s %q is not a valid address", name, addr)
		}
	}
	if _, err := numeric.ParseDecimal(c.TestBalance, 18); err != nil {
		return errors.Wrapf(err, "test_balance %q", c.TestBalance)
	}
	if c.PrivateKey != "" {
		if _, err := crypto.HexToECDSA(strip0x(c.PrivateKey)); err != nil {
			return errors.Wrap(err, "private_key")
		}
	}
	return nil
}

// Factory returns the parsed factory address.
func (c *Config) Factory() common.Address { return common.HexToAddress(c.FactoryAddress) }

// Router returns the parsed router address.
func (c *Config) Router() common.Address { return common.HexToAddress(c.RouterAddress) }

// WETH returns the parsed bridge-asset address.
func (c *Config) WETH() common.Address { return common.HexToAddress(c.WETHAddress) }

// SimulationAddress picks the sender for simulated calls, in order: the
// explicit caller-supplied address, the address derived from the configured
// private key, then the well-known funded fallback. It never yields the zero
// address, which several token contracts reject outright.
func (c *Config) SimulationAddress(explicit string) (common.Address, error) {
	if explicit != "" {
		if !common.IsHexAddress(explicit) {
			return common.Address{}, errors.Errorf("invalid wallet address %q", explicit)
		}
		return common.HexToAddress(explicit), nil
	}
	if c.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strip0x(c.PrivateKey))
		if err == nil {
			return crypto.PubkeyToAddress(key.PublicKey), nil
		}
	}
	return common.HexToAddress(defaultSimulationAddress), nil
}

func strip0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setUint32(dst *uint32, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			*dst = uint32(n)
		}
	}
}

func setUint64(dst *uint64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

package config

type Database struct {
	// Driver selects the dialector: sqlite keeps everything in a local
	// file, postgres is the shared deployment.
	Driver   string `mapstructure:"DATABASE_DRIVER" default:"sqlite"`
	Path     string `mapstructure:"DATABASE_PATH" default:"./labman.db"`
	Host     string `mapstructure:"DATABASE_HOST" default:"localhost"`
	Port     int    `mapstructure:"DATABASE_PORT" default:"5432"`
	Name     string `mapstructure:"DATABASE_NAME" default:"labman"`
	User     string `mapstructure:"DATABASE_USER" default:"postgres"`
	Password string `mapstructure:"DATABASE_PASSWORD" default:"labman"`
}

type Redis struct {
	Host     string `mapstructure:"REDIS_HOST" default:"127.0.0.1"`
	Port     int    `mapstructure:"REDIS_PORT" default:"6379"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB" default:"0"`
}

type Server struct {
	Platform string `mapstructure:"PLATFORM" default:"labman"`
	Service  string `mapstructure:"SERVICE" default:"api"`
	Port     int    `mapstructure:"WEB_PORT" default:"8080"`
	Env      string `mapstructure:"ENV" default:"dev"`
}

type Auth struct {
	JWTSecret      string `mapstructure:"JWT_SECRET" default:"labman-dev-secret"`
	AccessTTLMin   int    `mapstructure:"JWT_ACCESS_TTL_MIN" default:"60"`
	RefreshTTLHour int    `mapstructure:"JWT_REFRESH_TTL_HOUR" default:"720"`
}

type RPC struct {
	PubChem RPCPubChem `mapstructure:",squash"`
}

type RPCPubChem struct {
	Addr string `mapstructure:"PUBCHEM_ADDR" default:"https://pubchem.ncbi.nlm.nih.gov"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./info.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}

type Trace struct {
	Version         string `mapstructure:"TRACE_VERSION" default:"0.0.1"`
	TraceEndpoint   string `mapstructure:"TRACE_TRACEENDPOINT" default:""`
	MetricEndpoint  string `mapstructure:"TRACE_METRICENDPOINT" default:""`
	TraceProject    string `mapstructure:"TRACE_TRACEPROJECT" default:""`
	TraceInstanceID string `mapstructure:"TRACE_TRACEINSTANCEID" default:""`
	TraceAK         string `mapstructure:"TRACE_TRACEAK" default:""`
	TraceSK         string `mapstructure:"TRACE_TRACESK" default:""`
}

type Alert struct {
	// Inventory alert projections: expiry lookahead window and the
	// quantity below which a reagent counts as low stock.
	ExpiryWindowDays  int     `mapstructure:"ALERT_EXPIRY_WINDOW_DAYS" default:"30"`
	LowStockThreshold float64 `mapstructure:"ALERT_LOW_STOCK_THRESHOLD" default:"5"`
}

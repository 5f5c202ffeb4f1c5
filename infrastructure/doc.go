// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package, organized by technical concern:
//
// - http/standard: net/http client with connect timeouts and request logging
// - logger/standard: logrus backed structured logger
// - metrics/prometheus: upstream call counters and latency histograms
// - chart/gochart: bar chart rendering to PNG
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(10*time.Second, standard.WithLogger(logger))
//	resp, err := client.Do(ctx, &interfaces.Request{Method: http.MethodGet, URL: url})
//	if err != nil {
//	    // no response was received
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := standard.NewLogger("debug", "json", os.Stdout)
//	logger.Info("Fetched cities", map[string]interface{}{
//	    "country": "Switzerland",
//	    "cities":  42,
//	})
package infrastructure

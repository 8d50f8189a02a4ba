package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"gitlab.com/pnathan/wordcheck/src/lib/checkapi"
	"gitlab.com/pnathan/wordcheck/src/lib/checker"
	"gitlab.com/pnathan/wordcheck/src/lib/log"
	"gitlab.com/pnathan/wordcheck/src/lib/words"
)

// Config is the on-disk server configuration. Flags override it.
type Config struct {
	Ip         string       `yaml:"ip"`
	Port       string       `yaml:"port"`
	Dictionary string       `yaml:"dictionary"`
	Policy     words.Policy `yaml:"policy"`
}

func defaultConfig() Config {
	return Config{
		Ip:     "0.0.0.0",
		Port:   "1337",
		Policy: words.DefaultPolicy(),
	}
}

// The dictionary is loaded and the trie fully built before the listener
// starts, so the handlers only ever read.
var GLOBAL_CHECKER *checker.Checker
var GLOBAL_POLICY words.Policy
var GLOBAL_STATUS checkapi.DictionaryStatus

func checkWords(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)

	request := checkapi.CheckRequest{}
	if err := decoder.Decode(&request); err != nil {
		log.Printf("%#v", err)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("couldn't decode"))
		return
	}

	// Normalize only; never drop. The response must line up with the
	// request, duplicates and all.
	queries := make([]string, 0, len(request.Words))
	for _, word := range request.Words {
		queries = append(queries, GLOBAL_POLICY.Normalize(word))
	}

	response := checkapi.CheckResponse{Incorrect: GLOBAL_CHECKER.Check(queries)}
	text, err := json.Marshal(response)
	if err != nil {
		log.Printf("error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(text)
}

func dictionaryStatus(w http.ResponseWriter, r *http.Request) {
	text, err := json.Marshal(GLOBAL_STATUS)
	if err != nil {
		log.Printf("error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(text)
}

func Default(w http.ResponseWriter, r *http.Request) {

	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "ok")
}

func Index(w http.ResponseWriter, r *http.Request) {
	index := `<html>
   <head>
      <script type = "text/javascript">
			function setDictDiv(data) {
				console.log(data);
				let pp = JSON.stringify(data,null,8);
				document.getElementById("dict").innerHTML=pp;
			}
             function viewDictionary() {

				fetch('/api/dictionary')
				.then(response => response.json())
				.then(setDictDiv);
            }
      </script>
   </head>

   <body>
<h1> wordcheck</h1>
      <input type = "button" onclick = "viewDictionary()" value = "ViewDictionary" />
		<pre><div  id="dict"></div></pre>

<hr>

   </body>
</html>`
	fmt.Fprintf(w, index)

	w.WriteHeader(http.StatusOK)
}

func Wut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, "your content is in another url")
}

func requestIDHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		r.Header.Set("X-Request-Id", id)
		w.Header().Set("X-Request-Id", id)
		h.ServeHTTP(w, r)
	})
}

func loggerHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", r.Header.Get("X-Request-Id")),
			zap.Duration("took", time.Since(start)))
	})
}

//////////////////////////////////////////////////////////////
func main() {
	parser := argparse.NewParser("wordcheckd", "runs a wordcheck node")

	configFile := parser.String("c", "config",
		&argparse.Options{Required: false, Help: "yaml configuration file"})
	host := parser.String("i", "ip",
		&argparse.Options{Required: false, Help: "ip to bind to; overrides config"})
	port := parser.String("p", "port",
		&argparse.Options{Required: false, Help: "port to bind to; overrides config"})
	dictionary := parser.String("d", "dictionary",
		&argparse.Options{Required: false, Help: "dictionary file, one word per line; overrides config"})
	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		// In case of error print error and print usage
		// This can also be done by passing -h or --help flags
		fmt.Print(parser.Usage(err))
		return
	}

	config := defaultConfig()
	if *configFile != "" {
		log.Info("Config file provided...reading", zap.String("filename", *configFile))
		text, err := os.ReadFile(*configFile)
		if err != nil {
			log.Fatal("Unable to read config file", zap.String("filename", *configFile), zap.Error(err))
		}
		if err := yaml.Unmarshal(text, &config); err != nil {
			log.Fatal("unable to decode config file", zap.String("filename", *configFile), zap.Error(err))
		}
	}
	if *host != "" {
		config.Ip = *host
	}
	if *port != "" {
		config.Port = *port
	}
	if *dictionary != "" {
		config.Dictionary = *dictionary
	}
	if config.Dictionary == "" {
		fmt.Print(parser.Usage(fmt.Errorf("a dictionary file is required, by flag or config")))
		os.Exit(1)
	}

	GLOBAL_POLICY = config.Policy

	dictionaryWords, err := GLOBAL_POLICY.ReadDictionary(config.Dictionary)
	if err != nil {
		log.Fatal("unable to load dictionary", zap.String("filename", config.Dictionary), zap.Error(err))
	}

	buildStart := time.Now()
	GLOBAL_CHECKER = checker.Build(dictionaryWords)
	GLOBAL_STATUS = checkapi.DictionaryStatus{
		Words:       GLOBAL_CHECKER.Size(),
		Fingerprint: hex.EncodeToString(checker.Fingerprint(dictionaryWords)),
	}
	log.Info("dictionary built",
		zap.Int("words", GLOBAL_STATUS.Words),
		zap.String("fingerprint", GLOBAL_STATUS.Fingerprint),
		zap.Duration("took", time.Since(buildStart)))

	log.Printf("Good morning, Bilbo Baggins. I am listening on %s:%s", config.Ip, config.Port)

	r := mux.NewRouter()
	errorChain := alice.New(requestIDHandler, loggerHandler)
	r.HandleFunc("/", Index)
	r.HandleFunc("/healthz", Default)
	r.HandleFunc("/api/check", checkWords).Methods("POST")
	r.HandleFunc("/api/dictionary", dictionaryStatus).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(Wut)

	srv := &http.Server{
		Handler:      errorChain.Then(r),
		Addr:         fmt.Sprintf("%s:%s", config.Ip, config.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

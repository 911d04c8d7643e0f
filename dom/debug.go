package dom

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

var traceEnabled bool

func init() {
	v := os.Getenv("CHEERIO_DEBUG_DOM")
	if v == "" {
		return
	}
	traceEnabled, _ = strconv.ParseBool(v)
	if traceEnabled {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// traceMutation logs tree mutations when CHEERIO_DEBUG_DOM is set.
func traceMutation(method string, parent, n *Node) {
	if !traceEnabled {
		return
	}
	logrus.WithField("method", method).Debugf("[TREE] %s\n\n%s", n, parent.Root())
}

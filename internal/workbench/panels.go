package workbench

import (
	"fmt"
	"time"
)

// TimestampLayout formats the request time in the OUTPUT2 server log.
const TimestampLayout = "2006-01-02 15:04"

const problemsBlock = `No problems have been detected in the workspace.`

const outputBlock = `[Running] python -u "c:\Python\Personal Website Ideas\2\thato.py"
Hello World

[Done] exited with code=1 in 000.002 seconds`

const output2Block = `[Running] python -u "c:\Python\Personal Website Ideas\2\thato2.py"
* Serving Flask app 'PORTFOLIO'
* Debug mode: on
WARNING: This is a development server. Do not use it in a production deployment.
* Running on http://127.0.0.1:5000
Press CTRL+C to quit
* Restarting with watchdog (windowsapi)
* Debugger is active!
* Debugger PIN: XXX-XXX-XXX
| 127.0.0.1 - - [%s] "GET / HTTP/1.1" 200 -

[Done] exited with code=1 in 289.795 seconds`

const debugConsoleBlock = `Please start a debug session to evaluate expressions.`

const terminalBlock = `PS C:\Users\Thato\Portfolio> python main.py
Reading file...
Processing file...
Done
PS C:\Users\Thato\Portfolio> _`

// PanelBody returns the canned text for tab. Only the OUTPUT2 request line
// depends on now, and it is always printed in UTC.
func PanelBody(tab BottomTab, now time.Time) string {
	switch tab {
	case TabProblems:
		return problemsBlock
	case TabOutput:
		return outputBlock
	case TabOutput2:
		return fmt.Sprintf(output2Block, now.UTC().Format(TimestampLayout))
	case TabDebugConsole:
		return debugConsoleBlock
	case TabTerminal:
		return terminalBlock
	}
	return ""
}

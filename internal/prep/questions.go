package prep

// interviewQuestions maps skill names (case-insensitive exact lookup) to
// question-bank entries.
var interviewQuestions = map[string][]string{
	// Languages
	"Java":       {"Explain OOP concepts (Polymorphism, Inheritance, Encapsulation).", "Difference between HashMap and Hashtable.", "What is Garbage Collection and how does it work?", "Explain the difference between final, finally, and finalize.", "What are Java Streams?"},
	"Python":     {"Explain list comprehension with an example.", "Difference between Generator and Iterator?", "How is memory managed in Python?", "Explain decorators in Python.", "What is the difference between deep copy and shallow copy?"},
	"JavaScript": {"Explain the Event Loop.", "Difference between var, let, and const.", "What are Promises and Async/Await?", "Explain Closures in JavaScript.", "What is 'this' keyword?"},
	"TypeScript": {"Difference between Interface and Type.", "What are Generics?", "Explain Union and Intersection types.", "How does TypeScript compile to JavaScript?"},
	"C++":        {"Virtual functions and their use.", "Difference between C and C++.", "What are pointers and references?", "Explain memory management (new/delete)."},

	// Web
	"React":   {"Explain Virtual DOM.", "Significance of keys in lists.", "Difference between Class and Functional components.", "Explain useEffect and its dependency array.", "State management (Redux/Context API)."},
	"Node.js": {"Explain Event Driven Architecture.", "Difference between process.nextTick and setImmediate.", "How to handle streaming data?", "Explain Middleware in Express.", "How to avoid Callback Hell?"},
	"HTML":    {"Semantic vs Non-semantic tags.", "HTML5 new features.", "Local Storage vs Session Storage vs Cookies."},
	"CSS":     {"Flexbox vs Grid.", "Box Model explanation.", "CSS Specificity rules.", "How to center a div horizontally and vertically?"},

	// Data
	"SQL":     {"Difference between WHERE and HAVING.", "Explain ACID properties.", "Indexing strategies.", "Left Join vs Inner Join.", "Normalization forms (1NF, 2NF, 3NF)."},
	"MongoDB": {"SQL vs NoSQL differences.", "Aggregation pipeline.", "Indexing in MongoDB.", "How does replication work?"},

	// Core CS
	"DSA":      {"Time complexity of Binary Search.", "Explain QuickSort algorithm.", "Difference between Array and Linked List.", "DFS vs BFS applications.", "Hash Map collision resolution techniques."},
	"OOP":      {"Explain the 4 pillars of OOP.", "Overloading vs Overriding.", "Abstract Class vs Interface.", "Composition vs Inheritance."},
	"DBMS":     {"What is a transaction?", "Explain Deadlock in DB.", "Primary Key vs Foreign Key."},
	"OS":       {"Process vs Thread.", "Scheduling algorithms (Round Robin, FCFS).", "What is Paging and Segmentation?", "Explain Semaphores and Mutex."},
	"Networks": {"OSI Model Layers.", "TCP vs UDP.", "What is DNS?", "Explain HTTP/HTTPS handshake.", "What is a Proxy?"},
}

// defaultQuestions top up the set when skill-specific questions run short.
var defaultQuestions = []string{
	"Tell me about yourself.",
	"Why do you want to join our company?",
	"Describe a challenging project you worked on.",
	"What are your strengths and weaknesses?",
	"Where do you see yourself in 5 years?",
}

const questionCount = 10

package site

// siteStyles is the fixed professional layout for published sites. Inlined
// into every generated document so the artifact has no external references.
const siteStyles = `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
    line-height: 1.6;
    color: #333;
    background: #f5f5f5;
    padding: 20px;
}

.container {
    max-width: 850px;
    margin: 0 auto;
    background: white;
    padding: 60px;
    box-shadow: 0 0 20px rgba(0,0,0,0.1);
}

header {
    border-bottom: 3px solid #2563eb;
    padding-bottom: 20px;
    margin-bottom: 30px;
}

h1 {
    font-size: 2.5em;
    color: #1e40af;
    margin-bottom: 10px;
}

.title {
    font-size: 1.3em;
    color: #6b7280;
    margin-bottom: 15px;
}

.contact-info {
    display: flex;
    flex-wrap: wrap;
    gap: 20px;
    font-size: 0.95em;
    color: #6b7280;
}

.contact-info span {
    display: flex;
    align-items: center;
    gap: 5px;
}

section {
    margin-bottom: 35px;
}

h2 {
    color: #1e40af;
    font-size: 1.5em;
    margin-bottom: 15px;
    border-bottom: 2px solid #e5e7eb;
    padding-bottom: 8px;
}

.summary {
    color: #4b5563;
    line-height: 1.8;
}

.experience-item, .education-item {
    margin-bottom: 25px;
}

.experience-item h3, .education-item h3 {
    color: #1f2937;
    font-size: 1.2em;
    margin-bottom: 5px;
}

.experience-meta, .education-meta {
    color: #6b7280;
    font-size: 0.95em;
    margin-bottom: 10px;
}

.experience-description {
    color: #4b5563;
    line-height: 1.7;
}

.skills-list {
    display: flex;
    flex-wrap: wrap;
    gap: 10px;
}

.skill-tag {
    background: #dbeafe;
    color: #1e40af;
    padding: 6px 15px;
    border-radius: 20px;
    font-size: 0.9em;
}

@media (max-width: 768px) {
    .container {
        padding: 30px 20px;
    }

    h1 {
        font-size: 2em;
    }

    .contact-info {
        flex-direction: column;
        gap: 10px;
    }
}

@media print {
    body {
        background: white;
        padding: 0;
    }

    .container {
        box-shadow: none;
        padding: 0;
    }
}
`
